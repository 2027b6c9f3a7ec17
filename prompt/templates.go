package prompt

// Template texts. Each one specifies the output structure, the expected
// depth, and the target language of the output regardless of the source
// text's language.

const enStandard = `You are a professional video summarizer. Summarize this video transcript in a clear, concise manner in English.

Video transcript (may be in another language, please translate to English and summarize):
{{.Text}}

Provide a concise summary that covers the key points and important information.

Your summary should include:
1. The main ideas and key concepts, with emphasis on the essential points
2. Brief explanations of technical or complex terms if present
3. Information broken down into clear sections for readability
4. Concise coverage of content without unnecessary verbosity

Present the summary in an easy-to-read format, using bullet points and subheadings when needed.`

const enTeacher = `You are a professional educator and subject matter expert. Explain this video transcript in FULL DETAIL as if you were teaching it to your students in English, without summarizing or omitting any content.

Video transcript (may be in another language, please translate to English and explain thoroughly):
{{.Text}}

Your explanation should include:
1. A comprehensive introduction that frames the topic and its importance
2. Detailed explanations of ALL ideas using educational techniques
3. Thorough clarification of complex concepts and technical terms with multiple easy-to-understand examples
4. Organization of information into logical, sequential sections
5. In-depth explanation of each point with practical applications
6. A conclusion that connects the topic to practical applications

Use a teaching style appropriate for a classroom setting while maintaining the academic integrity of the content.
IMPORTANT: Do NOT summarize the content. Provide a COMPLETE and DETAILED explanation of all video content.`

const enArticle = `You are a professional writer and subject matter expert in the presented content area. Transform this video transcript into a comprehensive professional article in English, without summarizing or omitting any content.

Video transcript (may be in another language, please translate to English and write as a full article):
{{.Text}}

The article should include:
1. A compelling headline and strong opening paragraph that introduces the topic
2. Full development of ALL ideas in a polished, literary style
3. Professional language appropriate for specialists in the field
4. Detailed explanation of each point with illustrative examples
5. Content organized into cohesive paragraphs with clear subheadings
6. In-depth analysis of concepts and ideas presented
7. A conclusion that draws out key insights and offers forward-looking perspectives or recommendations

Write the article as a domain expert, demonstrating depth of knowledge and professional expertise.
IMPORTANT: Provide COMPLETE details without summarizing, and fully explain all video content.`

const enMetadata = `You are a professional video summarizer. Based on the available information about this video, create a helpful summary in English.

Video information (may be in another language, please translate to English and summarize):
{{.Text}}

Try to provide accurate and comprehensive information, keeping in mind that the available information is limited.

Include in your summary:
1. The main ideas and important concepts based on the available information
2. An analysis of what the video appears to be about
3. Breakdown of information into clear sections if possible

Present the summary in an easy-to-read format.
NOTE: This summary is based on limited information and not the full video content.`

const enMinimal = `No transcript could be found for the video with ID {{.VideoID}}.

Please provide a general description explaining:
1. That the content cannot be summarized without a transcript
2. Possible reasons why the transcript is not available (e.g., video doesn't have captions, captions are disabled, or the video is private)
3. Tips for the user on how to find alternative summaries or information`

const arStandard = `أنت مساعد محترف لتلخيص مقاطع الفيديو. قم بتلخيص نص هذا الفيديو بطريقة شاملة ومختصرة باللغة العربية.

نص الفيديو (قد يكون بلغة أخرى، قم بترجمته وتلخيصه بالعربية):
{{.Text}}

قدم ملخصًا مختصراً يغطي النقاط الرئيسية والمعلومات المهمة.

يجب أن يتضمن الملخص:
1. الأفكار والمفاهيم الرئيسية، مع التركيز على النقاط الأساسية
2. شرح مختصر للمصطلحات التقنية أو المعقدة إذا وجدت
3. تقسيم المعلومات إلى أقسام واضحة لسهولة القراءة
4. تغطية مختصرة للمحتوى دون إطالة غير ضرورية

قدم الملخص بتنسيق سهل القراءة، باستخدام النقاط والعناوين الفرعية عند الحاجة.`

const arTeacher = `أنت معلم محترف ومتخصص. قم بشرح نص هذا الفيديو بالتفصيل الكامل كما لو كنت تشرحه لطلابك باللغة العربية، دون اختصار أي محتوى.

نص الفيديو (قد يكون بلغة أخرى، قم بترجمته وشرحه بالعربية):
{{.Text}}

يجب أن يتضمن الشرح:
1. مقدمة تعريفية شاملة بالموضوع وأهميته
2. شرح تفصيلي للأفكار الرئيسية بأسلوب تعليمي واضح
3. توضيح المفاهيم المعقدة والمصطلحات التقنية مع أمثلة متعددة سهلة الفهم
4. تقسيم المعلومات إلى أقسام منطقية وتسلسلية
5. شرح كل نقطة بالتفصيل مع ربطها بالواقع العملي والتطبيقات
6. خلاصة تلخص النقاط الأساسية وتربط الموضوع بالواقع العملي

استخدم أسلوباً تعليمياً يناسب شرح المعلم للطلاب، مع الحفاظ على المستوى العلمي للمحتوى.
هام: لا تقم باختصار المحتوى، بل قدّم شرحاً تفصيلياً كاملاً لكل محتوى الفيديو.`

const arArticle = `أنت كاتب محترف ومتخصص في مجال المحتوى المعروض. قم بتحويل نص هذا الفيديو إلى مقالة احترافية تفصيلية باللغة العربية دون اختصار أي محتوى.

نص الفيديو (قد يكون بلغة أخرى، قم بترجمته وكتابته كمقالة كاملة بالعربية):
{{.Text}}

يجب أن تتضمن المقالة:
1. عنواناً جذاباً وفقرة افتتاحية قوية تمهد للموضوع
2. تطوير كامل وشامل للأفكار بأسلوب أدبي رصين
3. استخدام لغة احترافية تناسب المتخصصين في المجال
4. شرح تفصيلي لكل نقطة مع أمثلة توضيحية
5. تنظيم المحتوى في فقرات متماسكة وعناوين فرعية واضحة
6. تحليل عميق للمفاهيم والأفكار المطروحة
7. خاتمة تستخلص الأفكار الرئيسية وتقدم رؤية مستقبلية أو توصيات

اكتب المقالة كخبير متخصص في المجال، مع إظهار عمق المعرفة والخبرة المهنية.
هام: قدم تفاصيل كاملة دون اختصار، واشرح كل محتوى الفيديو بشكل شامل.`

const arMetadata = `أنت مساعد محترف لتلخيص مقاطع الفيديو. استنادًا إلى المعلومات المتاحة عن هذا الفيديو، قم بإنشاء ملخص مفيد باللغة العربية.

معلومات الفيديو (قد تكون بلغة أخرى، قم بترجمتها وتلخيصها بالعربية):
{{.Text}}

حاول تقديم معلومات دقيقة وشاملة، مع العلم أن المعلومات المتاحة محدودة.

ضمّن في ملخصك:
1. الأفكار الرئيسية والمفاهيم المهمة بناءً على المعلومات المتاحة
2. تحليل لما يبدو أن الفيديو يدور حوله
3. تقسيم المعلومات إلى أقسام واضحة إن أمكن

قدم الملخص بتنسيق سهل القراءة.
ملاحظة: هذا الملخص يعتمد على معلومات محدودة وليس على المحتوى الكامل للفيديو.`

const arMinimal = `لم يتم العثور على نص للفيديو ذو المعرف {{.VideoID}}.

الرجاء تقديم وصف عام يشرح:
1. أن المحتوى لا يمكن تلخيصه بدون نص
2. الأسباب المحتملة لعدم توفر النص (مثل: الفيديو لا يحتوي على ترجمة، أو أن الترجمة غير متاحة، أو أن الفيديو خاص)
3. نصائح للمستخدم حول كيفية العثور على ملخصات أو معلومات بديلة`
