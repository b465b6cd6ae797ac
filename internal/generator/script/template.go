package script

// scriptSource is the Unity editor window. Delimiters are [[ ]] so that C# braces
// pass through untouched.
const scriptSource = `using System;
using System.Collections.Generic;
using System.Globalization;
using System.Linq;
using System.Reflection;
using System.Text;
using System.Threading.Tasks;
using UnityEditor;
using UnityEngine;
using UnityEngine.Networking;

// Place this file in an Editor/ folder and open Tools > AI > Qdrant Indexer.
//
// JSON bodies are built by hand so the script has no package dependencies.
// The embedding response is read with a substring heuristic (the first array
// after the "values" field), not a JSON parser. It breaks if the response
// shape changes.

namespace UnityQdrantIndexer
{
    public class QdrantIndexerWindow : EditorWindow
    {
        private const int VECTOR_SIZE = 768;
        private const int MAX_CONTENT_CHARS = 8000;
        private const int CHUNK_SIZE = [[ .ChunkSize ]];
        private const string DISTANCE = "[[ cs .Distance ]]";
        private const string EMBEDDING_MODEL = "[[ cs .EmbeddingModel ]]";
        private const string GEMINI_EMBED_URL = "https://generativelanguage.googleapis.com/v1beta/models/[[ cs .EmbeddingModel ]]:embedContent";
        private const string DEFAULT_GEMINI_API_KEY = "[[ cs .APIKey ]]";
        private const string RESERVED_NAMESPACE_PREFIX = "Unity";
        private const string RESERVED_PACKAGE_PATH = "Packages/";

        private string qdrantUrl = "[[ cs .ServiceURL ]]";
        private string collectionName = "[[ cs .CollectionName ]]";
        private string geminiApiKey = ""; // Leave empty to use DEFAULT_GEMINI_API_KEY

        private bool isIndexing = false;
        private string statusMessage = "Ready";
        private float progress = 0f;

        [MenuItem("Tools/AI/Qdrant Indexer")]
        public static void ShowWindow()
        {
            GetWindow<QdrantIndexerWindow>("Qdrant Indexer");
        }

        private string ApiKey
        {
            get { return string.IsNullOrEmpty(geminiApiKey) ? DEFAULT_GEMINI_API_KEY : geminiApiKey; }
        }

        private void OnGUI()
        {
            GUILayout.Label("Qdrant Knowledge Graph Indexer", EditorStyles.boldLabel);
            EditorGUILayout.Space();

            qdrantUrl = EditorGUILayout.TextField("Qdrant URL", qdrantUrl);
            collectionName = EditorGUILayout.TextField("Collection Name", collectionName);
            geminiApiKey = EditorGUILayout.PasswordField("Gemini API Key", geminiApiKey);

            EditorGUILayout.Space();
            GUILayout.Label("Status: " + statusMessage, EditorStyles.helpBox);
            EditorGUI.ProgressBar(GUILayoutUtility.GetRect(18, 18), progress, "Indexing Progress");
            EditorGUILayout.Space();

            if (isIndexing)
            {
                if (GUILayout.Button("Cancel"))
                {
                    isIndexing = false;
                    statusMessage = "Cancelled";
                }
                return;
            }

            if (GUILayout.Button("Create Collection & Index Project"))
            {
                if (string.IsNullOrEmpty(ApiKey))
                {
                    EditorUtility.DisplayDialog("Error", "Please enter a Gemini API Key.", "OK");
                    return;
                }
                IndexProject();
            }
        }

        private async void IndexProject()
        {
            isIndexing = true;
            progress = 0f;
            statusMessage = "Starting...";

            try
            {
                statusMessage = "Ensuring Qdrant Collection exists...";
                await EnsureCollectionExists();

                statusMessage = "Scanning Code & Documentation...";
                var items = new List<IndexItem>();
                items.AddRange(ScanCodebase());
                items.AddRange(ScanDocumentation());

                int total = items.Count;
                for (int i = 0; i < total; i++)
                {
                    // Cancel stops here; points already upserted stay in the collection.
                    if (!isIndexing) break;

                    var item = items[i];
                    statusMessage = "Processing " + item.Name + " (" + item.Type + ")... " + (i + 1) + "/" + total;

                    float[] vector = await GetEmbedding(item.Content);
                    if (vector != null)
                    {
                        await UpsertPoint(item, vector);
                    }

                    progress = (float)(i + 1) / total;
                    await Task.Delay(50); // keep the editor responsive
                    Repaint();
                }

                if (isIndexing)
                {
                    statusMessage = "Indexing Complete!";
                    progress = 1f;
                }
            }
            catch (Exception e)
            {
                Debug.LogError(e);
                statusMessage = "Error: " + e.Message;
            }
            finally
            {
                isIndexing = false;
                Repaint();
            }
        }

        // --- Qdrant ---

        private async Task EnsureCollectionExists()
        {
            // Creation is attempted unconditionally. If the collection already
            // exists the service rejects the request and the warning is logged.
            string json = "{ \"vectors\": { \"size\": " + VECTOR_SIZE + ", \"distance\": \"" + DISTANCE + "\" } }";
            await SendRequest(qdrantUrl + "/collections/" + collectionName, "PUT", json);
        }

        private async Task UpsertPoint(IndexItem item, float[] vector)
        {
            string vectorStr = "[" + string.Join(",", vector.Select(v => v.ToString("R", CultureInfo.InvariantCulture))) + "]";
            string refs = string.Join(",", item.References);

            var payload = new StringBuilder();
            payload.Append("{ \"points\": [ { ");
            payload.Append("\"id\": ").Append(StableId(item.Name)).Append(", ");
            payload.Append("\"vector\": ").Append(vectorStr).Append(", ");
            payload.Append("\"payload\": { ");
            payload.Append("\"name\": \"").Append(JsonEscape(item.Name)).Append("\", ");
            payload.Append("\"type\": \"").Append(JsonEscape(item.Type)).Append("\", ");
            payload.Append("\"content\": \"").Append(JsonEscape(item.Content)).Append("\", ");
            payload.Append("\"references\": \"").Append(JsonEscape(refs)).Append("\"");
            payload.Append(" } } ] }");

            await SendRequest(qdrantUrl + "/collections/" + collectionName + "/points?wait=true", "PUT", payload.ToString());
        }

        // --- Gemini ---

        private async Task<float[]> GetEmbedding(string text)
        {
            if (text.Length > MAX_CONTENT_CHARS) text = text.Substring(0, MAX_CONTENT_CHARS);

            string body = "{ \"model\": \"models/" + EMBEDDING_MODEL + "\", \"content\": { \"parts\": [ { \"text\": \"" + JsonEscape(text) + "\" } ] } }";
            string url = GEMINI_EMBED_URL + "?key=" + UnityWebRequest.EscapeURL(ApiKey);

            using (var www = new UnityWebRequest(url, "POST"))
            {
                www.uploadHandler = new UploadHandlerRaw(Encoding.UTF8.GetBytes(body));
                www.downloadHandler = new DownloadHandlerBuffer();
                www.SetRequestHeader("Content-Type", "application/json");

                var op = www.SendWebRequest();
                while (!op.isDone) await Task.Delay(10);

                if (www.result != UnityWebRequest.Result.Success)
                {
                    Debug.LogError("Gemini Error: " + www.error + " : " + www.downloadHandler.text);
                    return null;
                }

                return ParseEmbeddingFromResponse(www.downloadHandler.text);
            }
        }

        // Finds the first numeric array after the "values" field.
        private float[] ParseEmbeddingFromResponse(string json)
        {
            try
            {
                int start = json.IndexOf("\"values\"", StringComparison.Ordinal);
                if (start == -1) return null;
                int arrayStart = json.IndexOf('[', start);
                if (arrayStart == -1) return null;
                int arrayEnd = json.IndexOf(']', arrayStart);
                if (arrayEnd == -1) return null;

                string arrayContent = json.Substring(arrayStart + 1, arrayEnd - arrayStart - 1);
                return arrayContent.Split(',')
                    .Select(s => float.Parse(s.Trim(), CultureInfo.InvariantCulture))
                    .ToArray();
            }
            catch (Exception)
            {
                Debug.LogError("Failed to parse embedding JSON");
                return null;
            }
        }

        // --- Project scan ---

        private struct IndexItem
        {
            public string Name;
            public string Type;
            public string Content;
            public List<string> References;
        }

        private List<IndexItem> ScanCodebase()
        {
            var items = new List<IndexItem>();

            Assembly assembly;
            try
            {
                assembly = Assembly.Load("Assembly-CSharp");
            }
            catch (Exception)
            {
                return items;
            }

            foreach (Type type in assembly.GetTypes())
            {
                if (!type.IsClass) continue;
                if (type.Namespace != null && type.Namespace.StartsWith(RESERVED_NAMESPACE_PREFIX, StringComparison.Ordinal)) continue;

                var content = new StringBuilder();
                content.AppendLine("Class: " + type.Name);

                var flags = BindingFlags.Public | BindingFlags.Instance | BindingFlags.DeclaredOnly;
                var refs = new List<string>();

                foreach (var p in type.GetProperties(flags))
                {
                    content.AppendLine("Property: " + p.PropertyType.Name + " " + p.Name);
                    refs.Add(p.PropertyType.Name);
                }

                foreach (var m in type.GetMethods(flags))
                {
                    if (m.IsSpecialName) continue; // property accessors
                    content.AppendLine("Method: " + m.ReturnType.Name + " " + m.Name);
                    foreach (var param in m.GetParameters())
                    {
                        refs.Add(param.ParameterType.Name);
                    }
                }

                items.Add(new IndexItem
                {
                    Name = type.Name,
                    Type = "Class",
                    Content = content.ToString(),
                    References = refs.Distinct().ToList()
                });
            }

            return items;
        }

        private List<IndexItem> ScanDocumentation()
        {
            var items = new List<IndexItem>();

            foreach (string guid in AssetDatabase.FindAssets("t:TextAsset"))
            {
                string path = AssetDatabase.GUIDToAssetPath(guid);
                if (path.StartsWith(RESERVED_PACKAGE_PATH, StringComparison.Ordinal)) continue;
                if (!path.EndsWith(".md", StringComparison.OrdinalIgnoreCase) &&
                    !path.EndsWith(".txt", StringComparison.OrdinalIgnoreCase))
                    continue;

                TextAsset asset = AssetDatabase.LoadAssetAtPath<TextAsset>(path);
                if (asset == null) continue;

                items.Add(new IndexItem
                {
                    Name = path,
                    Type = "Documentation",
                    Content = asset.text,
                    References = new List<string>()
                });
            }

            return items;
        }

        // --- Helpers ---

        // FNV-1a, stable across editor sessions so re-indexing overwrites points.
        private static ulong StableId(string name)
        {
            unchecked
            {
                uint hash = 2166136261;
                foreach (char c in name)
                {
                    hash ^= c;
                    hash *= 16777619;
                }
                return hash;
            }
        }

        private static string JsonEscape(string s)
        {
            if (string.IsNullOrEmpty(s)) return "";

            var sb = new StringBuilder(s.Length + 16);
            foreach (char c in s)
            {
                switch (c)
                {
                    case '\\': sb.Append("\\\\"); break;
                    case '"': sb.Append("\\\""); break;
                    case '\n': sb.Append("\\n"); break;
                    case '\r': sb.Append("\\r"); break;
                    case '\t': sb.Append("\\t"); break;
                    default:
                        if (c < 0x20) sb.Append("\\u").Append(((int)c).ToString("x4"));
                        else sb.Append(c);
                        break;
                }
            }
            return sb.ToString();
        }

        private async Task SendRequest(string url, string method, string body = null)
        {
            using (var www = new UnityWebRequest(url, method))
            {
                if (body != null)
                {
                    www.uploadHandler = new UploadHandlerRaw(Encoding.UTF8.GetBytes(body));
                }
                www.downloadHandler = new DownloadHandlerBuffer();
                www.SetRequestHeader("Content-Type", "application/json");

                var op = www.SendWebRequest();
                while (!op.isDone) await Task.Delay(10);

                if (www.result != UnityWebRequest.Result.Success)
                {
                    Debug.LogWarning("Request to " + url + " failed: " + www.error + "\n" + www.downloadHandler.text);
                }
            }
        }
    }
}
`
